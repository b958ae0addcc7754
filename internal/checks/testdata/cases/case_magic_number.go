package cases

const maxRetries = 5

const (
	bufferSize = 4096
)

func backoff(attempt int) int {
	if attempt == 0 {
		return 1
	}

	return attempt * 250
}

func area(r float64) float64 {
	return 3.14159 * r * r
}
