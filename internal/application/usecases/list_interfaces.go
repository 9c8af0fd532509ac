package usecases

import (
	"context"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"
	"wifictl/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// ListInterfacesUseCase enumerates the wireless interfaces on the system
type ListInterfacesUseCase struct {
	collector interfaces.InterfaceCollector
	logger    *logrus.Logger
}

// NewListInterfacesUseCase creates a new ListInterfacesUseCase
func NewListInterfacesUseCase(
	collector interfaces.InterfaceCollector,
	logger *logrus.Logger,
) *ListInterfacesUseCase {
	return &ListInterfacesUseCase{
		collector: collector,
		logger:    logger,
	}
}

// ListInterfacesOutput is the usecase result
type ListInterfacesOutput struct {
	Interfaces []entities.InterfaceName
}

// Execute collects the current wireless interfaces. The result is never
// cached; every menu iteration sees a fresh view of the system.
func (uc *ListInterfacesUseCase) Execute(ctx context.Context) (*ListInterfacesOutput, error) {
	names, err := uc.collector.Collect(ctx)
	if err != nil {
		metrics.RecordError(string(errors.ErrorTypeSystem))
		return nil, err
	}

	metrics.RecordCollection(len(names))

	uc.logger.WithField("interfaces", len(names)).Debug("Interface collection completed")

	return &ListInterfacesOutput{Interfaces: names}, nil
}
