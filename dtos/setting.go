package dtos

type SettingInput struct {
	Value string `json:"value"`
}
