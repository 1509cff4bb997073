package cli

var (
	PrintReport     = printReport
	WriteCandidates = writeCandidates
)
