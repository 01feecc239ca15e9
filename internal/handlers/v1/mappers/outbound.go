package mappers

import (
	"github.com/thoas/go-funk"

	api "github.com/webcalc/calculation-service/api/v1"
	"github.com/webcalc/calculation-service/internal/store/model"
)

func UserToApi(u model.User) api.User {
	return api.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func UserListToApi(users model.UserList) api.UserList {
	return funk.Map([]model.User(users), UserToApi).([]api.User)
}

func CalculationToApi(c model.Calculation) api.Calculation {
	inputs := []float64{}
	if c.Inputs != nil {
		inputs = c.Inputs.Data
	}
	return api.Calculation{
		Id:        c.ID,
		UserId:    c.UserID,
		Type:      c.Type,
		Inputs:    inputs,
		Result:    c.Result,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CalculationListToApi(calculations model.CalculationList) api.CalculationList {
	return funk.Map([]model.Calculation(calculations), CalculationToApi).([]api.Calculation)
}

func StatsToApi(stats model.Stats) api.Statistics {
	return api.Statistics{
		TotalUsers:         stats.TotalUsers,
		TotalCalculations:  stats.TotalCalculations,
		CalculationsByType: stats.CalculationsByType,
	}
}
