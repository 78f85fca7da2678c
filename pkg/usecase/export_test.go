package usecase

// Export internal helpers for testing
var (
	FirstToken       = firstToken
	WrapServiceError = wrapServiceError
)

const DefaultFallbackAnswer = defaultFallbackAnswer
