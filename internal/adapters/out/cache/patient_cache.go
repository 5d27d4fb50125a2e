package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// CacheAdapter keeps an LRU of patients by id in front of the registry
// scan. Patients never change after registration, so entries are only
// ever added.
type CacheAdapter struct {
	patients *lru.Cache[int, *domain.Patient]
	logger   out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	patients, err := lru.New[int, *domain.Patient](cfg.Cache.PatientsSize)
	if err != nil {
		logger.Error("cache.patients.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.PatientsSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		patients: patients,
		logger:   logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetPatient(ctx context.Context, patientID int) (*domain.Patient, bool) {
	patient, exists := c.patients.Get(patientID)
	if !exists {
		c.logger.Debug("cache.patients.get.miss", out.LogFields{
			"patientId": patientID,
		})
		return nil, false
	}

	c.logger.Debug("cache.patients.get.hit", out.LogFields{
		"patientId": patientID,
	})
	return patient, true
}

func (c *CacheAdapter) StorePatient(ctx context.Context, patient *domain.Patient) {
	if patient == nil {
		return
	}

	c.patients.Add(patient.ID, patient)
}
