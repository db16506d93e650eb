package repositories

// RepositoryProvider bundles every repository implementation behind the port
// interfaces, so wiring code can hand a single value to the service layer.
type RepositoryProvider struct {
	PolicyRepo PolicyRepositoryFacade
}
