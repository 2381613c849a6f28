package commands

import "github.com/dc25-uiux/uxai/internal/domain"

// CLI-specific constants
const (
	// DefaultEditorCommand is the default editor command
	DefaultEditorCommand = "vi"
	// DefaultHistoryLimit is the number of records listed by default
	DefaultHistoryLimit = domain.DefaultHistoryLimit
	// DefaultHistorySearchLimit caps search results
	DefaultHistorySearchLimit = 50
	// MaxHistoryAnalysisRecords bounds the records read by history stats
	MaxHistoryAnalysisRecords = 1000
	// TopComponentsShown is how many components history stats lists
	TopComponentsShown = 5
	// TimestampFormat formats history timestamps
	TimestampFormat = domain.TimestampFormat
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrAssistantUnavailable     = "assistant unavailable"
	ErrInspectorUnavailable     = "project inspector unavailable"
	ErrKeyRequired              = "--key is required"
	ErrQueryRequired            = "--query required"
	ErrComponentEmpty           = "component name cannot be empty"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgCancelled                = "Cancelled."
	MsgComponentsEmpty          = "No components configured."
)
