package model

type ScheduleCSV struct {
	SerialNo          string `csv:"serial_no"`
	Name              string `csv:"name"`
	Time              string `csv:"time"`
	Location          string `csv:"location"`
	IsTimeValid       bool   `csv:"is_time_valid"`
	IsLocationValid   bool   `csv:"is_location_valid"`
	ValidationMessage string `csv:"validation_message"`
}

func ToScheduleCSV(events []ScheduleEvent) []*ScheduleCSV {
	rows := make([]*ScheduleCSV, 0, len(events))
	for _, e := range events {
		rows = append(rows, &ScheduleCSV{
			SerialNo:          e.SerialNo,
			Name:              e.Name,
			Time:              e.Time,
			Location:          e.Location,
			IsTimeValid:       e.IsTimeValid,
			IsLocationValid:   e.IsLocationValid,
			ValidationMessage: e.ValidationMessage,
		})
	}
	return rows
}
