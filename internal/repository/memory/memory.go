package memory

import (
	"bank_lookup/internal/domain"
	"bank_lookup/internal/repository"
)

var (
	_ repository.AccountRepository            = (*AccountRepository)(nil)
	_ repository.Repository[*domain.Account] = (*AccountRepository)(nil)
)
