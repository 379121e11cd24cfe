// Package models defines the domain models for groupsplit.
//
// Models are built per request and dropped once the response is written.
// Nothing here is persisted: groups and expenses have routes but no backing
// data yet, so the only model is the User derived from the request.
package models
