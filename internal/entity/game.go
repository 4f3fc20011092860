package entity

import "time"

// Game is the record of a single lottery draw, identified by its round.
type Game struct {
	Base
	Round    int       `gorm:"uniqueIndex;not null;check:chk_games_round,round > 0"`
	DrawDate time.Time `gorm:"type:date;not null"`

	FirstPrizeWinners  int   `gorm:"not null"`
	FirstPrizeAmount   int64 `gorm:"not null"`
	SecondPrizeWinners int   `gorm:"not null"`
	SecondPrizeAmount  int64 `gorm:"not null"`
	ThirdPrizeWinners  int   `gorm:"not null"`
	ThirdPrizeAmount   int64 `gorm:"not null"`
	FourthPrizeWinners int   `gorm:"not null"`
	FourthPrizeAmount  int64 `gorm:"not null"`
	FifthPrizeWinners  int   `gorm:"not null"`
	FifthPrizeAmount   int64 `gorm:"not null"`

	Number1     int `gorm:"not null"`
	Number2     int `gorm:"not null"`
	Number3     int `gorm:"not null"`
	Number4     int `gorm:"not null"`
	Number5     int `gorm:"not null"`
	Number6     int `gorm:"not null"`
	BonusNumber int `gorm:"not null"`
}

func (g *Game) TableName() string {
	return "games"
}

// Numbers returns the six main numbers in draw order.
func (g *Game) Numbers() []int {
	return []int{g.Number1, g.Number2, g.Number3, g.Number4, g.Number5, g.Number6}
}
