package models

// Warehouse is a physical storage location within a store.
type Warehouse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Store     int64  `json:"store"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func (w Warehouse) EntityID() int64 { return w.ID }

// Supplier is a goods provider referenced by stock entries.
type Supplier struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Store     int64  `json:"store"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func (s Supplier) EntityID() int64 { return s.ID }

// Customer is a buyer referenced by stock exits and invoices.
type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Store     int64  `json:"store"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func (c Customer) EntityID() int64 { return c.ID }

// EmployeePosition enumerates the roles an employee can hold.
type EmployeePosition string

const (
	PositionVendeur    EmployeePosition = "vendeur"
	PositionCaissier   EmployeePosition = "caissier"
	PositionMagasinier EmployeePosition = "magasinier"
	PositionManager    EmployeePosition = "manager"
	PositionAutre      EmployeePosition = "autre"
)

// Employee is a store staff member.
type Employee struct {
	ID       int64            `json:"id"`
	FullName string           `json:"fullname"`
	Phone    string           `json:"phone,omitempty"`
	Position EmployeePosition `json:"position"`
	Salary   string           `json:"salary"`
	HireDate string           `json:"hire_date"`
	Store    int64            `json:"store"`
	IsActive bool             `json:"is_active"`
	Created  string           `json:"created_at"`
}

func (e Employee) EntityID() int64 { return e.ID }

// Product is a catalog item. TotalStock is a server-computed aggregate
// across warehouses and is only present on list/detail reads.
type Product struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Unit          string `json:"unit"`
	MinStockAlert int64  `json:"min_stock_alert"`
	Store         int64  `json:"store"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	TotalStock    int64  `json:"total_stock,omitempty"`
}

func (p Product) EntityID() int64 { return p.ID }

// LowOnStock reports whether the aggregate quantity has fallen to or
// below the product's alert threshold.
func (p Product) LowOnStock() bool {
	return p.TotalStock <= p.MinStockAlert
}

// ProductStock is the per-warehouse quantity of one product.
type ProductStock struct {
	ID          int64     `json:"id"`
	Product     Product   `json:"product"`
	Warehouse   Warehouse `json:"warehouse"`
	Quantity    int64     `json:"quantity"`
	LastUpdated string    `json:"last_updated"`
}

func (p ProductStock) EntityID() int64 { return p.ID }
