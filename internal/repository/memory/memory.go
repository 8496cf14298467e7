package memory

import (
	"id_validator/internal/repository"
)

var (
	_ repository.AttemptRepository = (*AttemptRepository)(nil)
)
