package enum

// ParseTransactionType resolves a transaction type name.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch s {
	case "income":
		return TransactionTypeIncome, true
	case "expense":
		return TransactionTypeExpense, true
	}
	return TransactionTypeIncome, false
}

// ParseSaleStatus resolves a sale status name.
func ParseSaleStatus(s string) (SaleStatus, bool) {
	switch s {
	case "draft":
		return SaleStatusDraft, true
	case "confirmed":
		return SaleStatusConfirmed, true
	case "dispatched":
		return SaleStatusDispatched, true
	case "delivered":
		return SaleStatusDelivered, true
	case "cancelled":
		return SaleStatusCancelled, true
	case "returned":
		return SaleStatusReturned, true
	}
	return SaleStatusDraft, false
}

// ParseReceiptStatus resolves a receipt status name.
func ParseReceiptStatus(s string) (ReceiptStatus, bool) {
	switch s {
	case "draft":
		return ReceiptStatusDraft, true
	case "issued":
		return ReceiptStatusIssued, true
	case "cancelled":
		return ReceiptStatusCancelled, true
	}
	return ReceiptStatusDraft, false
}

// ParseMovementType resolves an inventory movement type name.
func ParseMovementType(s string) (MovementType, bool) {
	switch s {
	case "purchase":
		return MovementTypePurchase, true
	case "sale":
		return MovementTypeSale, true
	case "return":
		return MovementTypeReturn, true
	case "adjustment":
		return MovementTypeAdjustment, true
	case "damage":
		return MovementTypeDamage, true
	case "transfer":
		return MovementTypeTransfer, true
	}
	return MovementTypeAdjustment, false
}

// ParseFrequency resolves a rollup frequency name.
func ParseFrequency(s string) (Frequency, bool) {
	switch s {
	case "daily":
		return FrequencyDaily, true
	case "weekly":
		return FrequencyWeekly, true
	case "monthly":
		return FrequencyMonthly, true
	case "yearly":
		return FrequencyYearly, true
	}
	return FrequencyMonthly, false
}

// ParseAuditAction resolves an audit action name.
func ParseAuditAction(s string) (AuditAction, bool) {
	switch s {
	case "create":
		return AuditActionCreate, true
	case "update":
		return AuditActionUpdate, true
	case "delete":
		return AuditActionDelete, true
	case "view":
		return AuditActionView, true
	case "export":
		return AuditActionExport, true
	case "login":
		return AuditActionLogin, true
	case "logout":
		return AuditActionLogout, true
	case "permission_change":
		return AuditActionPermissionChange, true
	}
	return AuditActionView, false
}
