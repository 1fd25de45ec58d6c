package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Creative() CreativeRepository
	Close() error
}
