package usecase

// Export unexported functions for testing
var (
	PartitionForTest = partition[string]
)
