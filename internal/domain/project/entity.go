package project

type Project struct {
	ID   string
	Code string
	Name string
}
