package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/fatih/structs"
	"github.com/nums-lab/backend/pkg/enum"
)

type ThemeMode string

var (
	ThemeModeLight = enum.New(ThemeMode("light"))
	ThemeModeDark  = enum.New(ThemeMode("dark"))
)

type Theme struct {
	Base
	Name      string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	NameKR    string      `gorm:"column:name_kr;type:varchar(50)"`
	Mode      ThemeMode   `gorm:"type:varchar(10);not null"`
	Colors    ThemeColors `gorm:"type:json;not null"`
	Variables Map         `gorm:"type:json"`
	IsDefault bool        `gorm:"not null;default:false"`
}

func (t *Theme) TableName() string {
	return "themes"
}

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ThemeColors holds the named colours every theme must define. The structs
// tag is the external name of the colour.
type ThemeColors struct {
	Primary      string `json:"primary" structs:"primary"`
	Secondary    string `json:"secondary" structs:"secondary"`
	Accent       string `json:"accent" structs:"accent"`
	Error        string `json:"error" structs:"error"`
	Info         string `json:"info" structs:"info"`
	Success      string `json:"success" structs:"success"`
	Warning      string `json:"warning" structs:"warning"`
	Background   string `json:"background" structs:"background"`
	Surface      string `json:"surface" structs:"surface"`
	OnPrimary    string `json:"on-primary" structs:"on-primary"`
	OnSecondary  string `json:"on-secondary" structs:"on-secondary"`
	OnBackground string `json:"on-background" structs:"on-background"`
	OnSurface    string `json:"on-surface" structs:"on-surface"`
}

// Validate checks that every colour is present and is a #RRGGBB value.
func (c ThemeColors) Validate() error {
	for _, field := range structs.New(c).Fields() {
		name := field.Tag("structs")
		value, _ := field.Value().(string)
		if value == "" {
			return fmt.Errorf("missing color: %s", name)
		}

		if !hexColorRegex.MatchString(value) {
			return fmt.Errorf("invalid HEX color format: %s", name)
		}
	}

	return nil
}

// ToMap returns the colours keyed by their external name.
func (c ThemeColors) ToMap() map[string]string {
	result := map[string]string{}
	for k, v := range structs.Map(c) {
		result[k] = v.(string)
	}

	return result
}

func (c *ThemeColors) Scan(value any) error {
	switch t := value.(type) {
	case string:
		return json.Unmarshal([]byte(t), c)
	case []byte:
		return json.Unmarshal(t, c)
	default:
		return fmt.Errorf("cannot scan invalid data type %T", value)
	}
}

func (c ThemeColors) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}
