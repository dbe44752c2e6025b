package parser

const (
	OpsFormat = "ops"
)

func IsAvailableFormat(format string) bool {
	switch format {
	case OpsFormat:
		return true
	default:
		return false
	}
}
