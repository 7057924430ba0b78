package services

import "time"

type Service struct {
	now func() time.Time
}

func bad() time.Time {
	return time.Now() // want "time.Now\\(\\) in domain code"
}

func badNested() int {
	return time.Now().Year() // want "time.Now\\(\\) in domain code"
}

func goodInjected() *Service {
	return &Service{now: time.Now}
}

func goodParameter(now time.Time) time.Time {
	return now.Add(time.Hour)
}
