package dto

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// Proyecciones entidad -> respuesta. Todas las respuestas HTTP pasan por aquí;
// en particular ToUserResponse es el único punto donde se serializa un usuario,
// y omite siempre el hash de la contraseña.

// ToUserResponse proyección de User sin campos sensibles.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToDepartmentResponse proyección de Department.
func ToDepartmentResponse(d *entity.Department) *DepartmentResponse {
	if d == nil {
		return nil
	}
	return &DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDivisionResponse proyección de Division.
func ToDivisionResponse(d *entity.Division) *DivisionResponse {
	if d == nil {
		return nil
	}
	return &DivisionResponse{
		ID:           d.ID,
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Code:         d.Code,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToPlantResponse proyección de Plant.
func ToPlantResponse(p *entity.Plant) *PlantResponse {
	if p == nil {
		return nil
	}
	return &PlantResponse{
		ID:         p.ID,
		DivisionID: p.DivisionID,
		Name:       p.Name,
		Code:       p.Code,
		Location:   p.Location,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToStorageLevelResponse proyección de StorageLevel.
func ToStorageLevelResponse(s *entity.StorageLevel) *StorageLevelResponse {
	if s == nil {
		return nil
	}
	return &StorageLevelResponse{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToMeasurementUnitResponse proyección de MeasurementUnit.
func ToMeasurementUnitResponse(m *entity.MeasurementUnit) *MeasurementUnitResponse {
	if m == nil {
		return nil
	}
	return &MeasurementUnitResponse{
		ID:        m.ID,
		Name:      m.Name,
		Symbol:    m.Symbol,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToSupplierResponse proyección de Supplier.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		Contact:   s.Contact,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToItemResponse proyección de Item.
func ToItemResponse(i *entity.Item) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:                i.ID,
		StorageLevelID:    i.StorageLevelID,
		MeasurementUnitID: i.MeasurementUnitID,
		SupplierID:        i.SupplierID,
		Name:              i.Name,
		Code:              i.Code,
		Description:       i.Description,
		UnitCost:          i.UnitCost,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// ToInventoryResponse proyección de Inventory.
func ToInventoryResponse(inv *entity.Inventory) *InventoryResponse {
	if inv == nil {
		return nil
	}
	return &InventoryResponse{
		ID:           inv.ID,
		ItemID:       inv.ItemID,
		PlantID:      inv.PlantID,
		Quantity:     inv.Quantity,
		ReorderPoint: inv.ReorderPoint,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

// ToInventoryHistoryResponse proyección de InventoryHistory.
func ToInventoryHistoryResponse(h *entity.InventoryHistory) *InventoryHistoryResponse {
	if h == nil {
		return nil
	}
	return &InventoryHistoryResponse{
		ID:               h.ID,
		InventoryID:      h.InventoryID,
		ItemID:           h.ItemID,
		PlantID:          h.PlantID,
		Action:           h.Action,
		PreviousQuantity: h.PreviousQuantity,
		Quantity:         h.Quantity,
		UserID:           h.UserID,
		CreatedAt:        h.CreatedAt,
	}
}
