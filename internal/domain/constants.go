package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Limit constants
const (
	// DefaultMaxCacheEntries is the maximum number of cached responses
	DefaultMaxCacheEntries = 100
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Confidence bounds applied to provider answers.
const (
	DefaultProviderConfidence = 0.8
	MaxProviderConfidence     = 0.95
)

// Static messages returned by auxiliary operations when no answer is available.
const (
	MsgAnalyzeFailed      = "Не удалось проанализировать код"
	MsgGenerateFailed     = "Не удалось сгенерировать компонент"
	MsgImprovementsFailed = "Не удалось получить предложения по улучшению"
	MsgCodebaseFailed     = "Не удалось проанализировать кодовую базу"
	MsgRefactorFailed     = "Не удалось получить предложения по рефакторингу"
	MsgTestsFailed        = "Не удалось сгенерировать тесты"
	MsgOptimizeFailed     = "Не удалось получить предложения по оптимизации"
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// DefaultComponents is the whitelist used when the config does not list any.
var DefaultComponents = []string{
	"Button", "Input", "Label", "Badge", "Toggle", "Switch", "Textarea",
	"Select", "Checkbox", "Slider", "Avatar", "Progress", "Alert", "Card",
	"Dialog", "Tabs", "Accordion", "Table", "Pagination", "SearchBar",
	"FilterGroup", "ComponentCard", "Header", "Footer", "ComponentGrid",
}
