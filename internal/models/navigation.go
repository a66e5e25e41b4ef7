package models

// TripDetails is the in-flight navigation context. It exists only while
// navigation runs and is converted into a persisted Trip when it ends.
type TripDetails struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Vehicle   string `json:"vehicle"`
	Travelers int    `json:"travelers"`
	Mode      string `json:"mode"`
}
