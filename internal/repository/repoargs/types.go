package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	AccountRepoName         RepositoryName = "account"
	CategoryRepoName        RepositoryName = "category"
	CollectionPointRepoName RepositoryName = "collection_point"
	ScanCodeRepoName        RepositoryName = "scan_code"
	PostingRepoName         RepositoryName = "posting"
	WithdrawalRepoName      RepositoryName = "withdrawal"
	ApplicationRepoName     RepositoryName = "application"
	ScanLogRepoName         RepositoryName = "scan_log"
)
