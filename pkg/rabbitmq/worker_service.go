package rabbitmq

// WorkerService is a long-running background service started by the
// application runtime after the queue registries are initialized.
type WorkerService interface {
	GetServiceName() string
	StartService()
}
