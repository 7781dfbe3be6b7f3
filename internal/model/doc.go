package model

// Package model defines the domain data structures shared across the app:
// download requests and results, the error taxonomy, format presets and
// status enums. Structures are designed for direct binding in the UI and
// explicit state transitions.
