package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewProjectionService,
	NewWorksCouncilService,
	NewLeadershipService,
	NewEmployeeService,
	NewTechnicalUnitService,
	NewIntegrityService,
	NewRosterService,
)
