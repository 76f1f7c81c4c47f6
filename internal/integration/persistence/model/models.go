package model

// All returns every persisted model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&DashboardModel{},
		&AppSettingsModel{},
		&InitialBalanceModel{},
		&DailyEntryModel{},
		&GoalModel{},
		&EmailQueueModel{},
	}
}
