package model

// SessionID uniquely identifies a play session
type SessionID string
