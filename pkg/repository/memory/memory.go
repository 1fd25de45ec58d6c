package memory

import (
	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	creative *creativeRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		creative: newCreativeRepository(),
	}
}

func (m *Memory) Creative() interfaces.CreativeRepository {
	return m.creative
}

func (m *Memory) Close() error {
	return nil
}
