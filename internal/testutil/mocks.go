package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/domain/inspection"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/pkg/errors"
)

// MockAlertRepository is a mock implementation of alert.Repository
type MockAlertRepository struct {
	Alerts      map[string]*alert.Alert
	Order       []string
	CreateError error
	GetError    error
	UpdateError error
	ListError   error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		Alerts: make(map[string]*alert.Alert),
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Alerts[a.ID] = a
	m.Order = append(m.Order, a.ID)
	return nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.Alerts[id]
	if !ok {
		return nil, errors.NotFound("Alert")
	}
	return a, nil
}

func (m *MockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Alerts[a.ID]; !ok {
		return errors.NotFound("Alert")
	}
	m.Alerts[a.ID] = a
	return nil
}

func (m *MockAlertRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Alerts[id]; !ok {
		return errors.NotFound("Alert")
	}
	delete(m.Alerts, id)
	return nil
}

func (m *MockAlertRepository) ListWithPagination(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.Alert, int64, error) {
	if m.ListError != nil {
		return nil, 0, m.ListError
	}
	var matched []*alert.Alert
	for _, id := range m.Order {
		a, ok := m.Alerts[id]
		if !ok {
			continue
		}
		if filter.Type != "" && string(a.Type) != filter.Type {
			continue
		}
		if filter.Priority != "" && string(a.Priority) != filter.Priority {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		if filter.VehicleID != "" && a.VehicleID != filter.VehicleID {
			continue
		}
		if filter.DriverID != "" && a.DriverID != filter.DriverID {
			continue
		}
		matched = append(matched, a)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *MockAlertRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range m.Alerts {
		counts[string(a.Status)]++
	}
	return counts, nil
}

func (m *MockAlertRepository) ExistsOpen(ctx context.Context, vehicleID, driverID string, t alert.Type, document string) (bool, error) {
	for _, a := range m.Alerts {
		if a.Type != t || !a.Open() {
			continue
		}
		if vehicleID != "" && a.VehicleID != vehicleID {
			continue
		}
		if driverID != "" && a.DriverID != driverID {
			continue
		}
		for _, item := range a.AffectedItems {
			if strings.Contains(item, document) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *MockAlertRepository) CountPendingByPriority(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range m.Alerts {
		if a.Status == alert.StatusPending {
			counts[string(a.Priority)]++
		}
	}
	return counts, nil
}

// MockInspectionRepository is a mock implementation of inspection.Repository
type MockInspectionRepository struct {
	Inspections map[string]*inspection.Inspection
	Order       []string
	CreateError error
	GetError    error
}

func NewMockInspectionRepository() *MockInspectionRepository {
	return &MockInspectionRepository{
		Inspections: make(map[string]*inspection.Inspection),
	}
}

func (m *MockInspectionRepository) Create(ctx context.Context, insp *inspection.Inspection) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Inspections[insp.ID] = insp
	m.Order = append(m.Order, insp.ID)
	return nil
}

func (m *MockInspectionRepository) GetByID(ctx context.Context, id string) (*inspection.Inspection, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	insp, ok := m.Inspections[id]
	if !ok {
		return nil, errors.NotFound("Inspection")
	}
	return insp, nil
}

func (m *MockInspectionRepository) ListWithPagination(ctx context.Context, filter inspection.Filter, limit, offset int) ([]*inspection.Inspection, int64, error) {
	var matched []*inspection.Inspection
	for _, id := range m.Order {
		insp, ok := m.Inspections[id]
		if !ok {
			continue
		}
		if filter.VehicleID != "" && insp.VehicleID != filter.VehicleID {
			continue
		}
		if filter.DriverID != "" && insp.DriverID != filter.DriverID {
			continue
		}
		if filter.Verdict != "" && string(insp.Verdict) != filter.Verdict {
			continue
		}
		matched = append(matched, insp)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *MockInspectionRepository) AttachDocument(ctx context.Context, id, ref string) error {
	insp, ok := m.Inspections[id]
	if !ok {
		return errors.NotFound("Inspection")
	}
	insp.DocumentRef = ref
	return nil
}

// MockVehicleRepository is a mock implementation of vehicle.Repository
type MockVehicleRepository struct {
	Vehicles    map[string]*vehicle.Vehicle
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		Vehicles: make(map[string]*vehicle.Vehicle),
	}
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Vehicles[v.ID] = v
	return nil
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	v, ok := m.Vehicles[id]
	if !ok {
		return nil, errors.NotFound("Vehicle")
	}
	return v, nil
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Vehicles[v.ID]; !ok {
		return errors.NotFound("Vehicle")
	}
	m.Vehicles[v.ID] = v
	return nil
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Vehicles[id]; !ok {
		return errors.NotFound("Vehicle")
	}
	delete(m.Vehicles, id)
	return nil
}

func (m *MockVehicleRepository) List(ctx context.Context, filter vehicle.Filter) ([]*vehicle.Vehicle, error) {
	var result []*vehicle.Vehicle
	for _, v := range m.Vehicles {
		if filter.State != "" && string(v.State) != filter.State {
			continue
		}
		if filter.Kind != "" && v.Kind != filter.Kind {
			continue
		}
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Plate < result[j].Plate })
	return result, nil
}

// MockDriverRepository is a mock implementation of driver.Repository
type MockDriverRepository struct {
	Drivers     map[string]*driver.Driver
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{
		Drivers: make(map[string]*driver.Driver),
	}
}

func (m *MockDriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Drivers[d.ID] = d
	return nil
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id string) (*driver.Driver, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	d, ok := m.Drivers[id]
	if !ok {
		return nil, errors.NotFound("Driver")
	}
	return d, nil
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Drivers[d.ID]; !ok {
		return errors.NotFound("Driver")
	}
	m.Drivers[d.ID] = d
	return nil
}

func (m *MockDriverRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Drivers[id]; !ok {
		return errors.NotFound("Driver")
	}
	delete(m.Drivers, id)
	return nil
}

func (m *MockDriverRepository) List(ctx context.Context) ([]*driver.Driver, error) {
	var result []*driver.Driver
	for _, d := range m.Drivers {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
