package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/models/dtos"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// normalizeVehicle validates a vehicle descriptor and applies intake
// defaults (hours 0, employees 1). field prefixes the offending field in
// validation errors, e.g. "band[3].vehicle" or "queue[0]".
func normalizeVehicle(field string, payload dtos.VehiclePayload) (name string, hours float64, employees int, err error) {
	name = strings.TrimSpace(payload.Name)
	if name == "" {
		return "", 0, 0, errs.NewValidation(field+".name", constants.MsgVehicleNameEmpty)
	}
	if payload.Hours < 0 {
		return "", 0, 0, errs.NewValidation(field+".hours", constants.MsgNegativeHours)
	}
	employees = constants.DefaultEmployees
	if payload.Employees != nil {
		if *payload.Employees < 1 {
			return "", 0, 0, errs.NewValidation(field+".employees", "employees must be at least 1")
		}
		employees = *payload.Employees
	}
	return name, payload.Hours, employees, nil
}

func validateTimeOfDay(field, value string) error {
	if !timeOfDayRe.MatchString(value) {
		return errs.NewValidation(field, fmt.Sprintf("%q is not a valid HH:MM time", value))
	}
	return nil
}

func validateConfig(req dtos.ConfigUpdateRequest) error {
	if err := validateTimeOfDay("window.start", req.Window.Start); err != nil {
		return err
	}
	if err := validateTimeOfDay("window.end", req.Window.End); err != nil {
		return err
	}
	for i, day := range req.Window.Days {
		if day < 0 || day > 6 {
			return errs.NewValidation(
				fmt.Sprintf("window.days[%d]", i),
				"day index must be between 0 and 6",
			)
		}
	}
	for i, br := range req.Breaks {
		if err := validateTimeOfDay(fmt.Sprintf("breaks[%d].start", i), br.Start); err != nil {
			return err
		}
		if err := validateTimeOfDay(fmt.Sprintf("breaks[%d].end", i), br.End); err != nil {
			return err
		}
		if br.Start >= br.End {
			return errs.NewValidation(
				fmt.Sprintf("breaks[%d]", i),
				"break start must be before its end",
			)
		}
	}
	for i, raw := range req.FreeDays {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return errs.NewValidation(
				fmt.Sprintf("freeDays[%d]", i),
				fmt.Sprintf("%q is not a valid YYYY-MM-DD date", raw),
			)
		}
	}
	if req.Employees < 1 {
		return errs.NewValidation("employees", "employees must be at least 1")
	}
	return nil
}
