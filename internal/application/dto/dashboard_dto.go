package dto

import "github.com/shopspring/decimal"

// DashboardStats resumen global para la vista principal.
// RecentOrders: las 5 órdenes más recientes por fecha descendente.
type DashboardStats struct {
	TotalOrders      int64               `json:"totalOrders"`
	TotalRevenue     decimal.Decimal     `json:"totalRevenue"`
	TotalStores      int64               `json:"totalStores"`
	TotalRepairWorks int64               `json:"totalRepairWorks"`
	RecentOrders     []WorkOrderResponse `json:"recentOrders"`
}
