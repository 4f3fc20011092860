package model

type Game struct {
	ID                 string `json:"game_id"`
	Round              int    `json:"round"`
	DrawDate           string `json:"draw_date"`
	FirstPrizeWinners  int    `json:"first_prize_winners"`
	FirstPrizeAmount   int64  `json:"first_prize_amount"`
	SecondPrizeWinners int    `json:"second_prize_winners"`
	SecondPrizeAmount  int64  `json:"second_prize_amount"`
	ThirdPrizeWinners  int    `json:"third_prize_winners"`
	ThirdPrizeAmount   int64  `json:"third_prize_amount"`
	FourthPrizeWinners int    `json:"fourth_prize_winners"`
	FourthPrizeAmount  int64  `json:"fourth_prize_amount"`
	FifthPrizeWinners  int    `json:"fifth_prize_winners"`
	FifthPrizeAmount   int64  `json:"fifth_prize_amount"`
	Number1            int    `json:"number1"`
	Number2            int    `json:"number2"`
	Number3            int    `json:"number3"`
	Number4            int    `json:"number4"`
	Number5            int    `json:"number5"`
	Number6            int    `json:"number6"`
	BonusNumber        int    `json:"bonus_number"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

const (
	UploadStatusCreated = "created"
	UploadStatusUpdated = "updated"
)

type UploadGamesRequest struct {
	Data string `json:"data"`
}

type UploadResult struct {
	Round   int    `json:"round"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UploadError struct {
	Round int    `json:"round"`
	Error string `json:"error"`
}

type UploadGamesResponse struct {
	Status
	Total        int            `json:"total"`
	SuccessCount int            `json:"successCount"`
	ErrorCount   int            `json:"errorCount"`
	Results      []UploadResult `json:"results"`
	Errors       []UploadError  `json:"errors,omitempty"`
}

type GetGamesRequest struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Round *int   `json:"round"`
	All   string `json:"all"`
}

// GetGamesResponse carries TotalItems when every game is requested and
// Pagination otherwise.
type GetGamesResponse struct {
	Status
	Games      []Game      `json:"games"`
	TotalItems *int64      `json:"totalItems,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type GetGameByRoundRequest struct {
	Round int `json:"round"`
}

type GetGameByRoundResponse struct {
	Status
	Data Game `json:"data"`
}

type GetRecentGameRequest struct{}

type GetRecentGameResponse struct {
	Status
	Data Game `json:"data"`
}

type RecentGameStatus struct {
	Round         int    `json:"round"`
	DrawDate      string `json:"drawDate"`
	DaysElapsed   int    `json:"daysElapsed"`
	ThresholdDays int    `json:"thresholdDays"`
	IsUpToDate    bool   `json:"isUpToDate"`
	ServerNow     string `json:"serverNow"`
	Game          Game   `json:"game"`
}

type GetRecentGameStatusRequest struct{}

type GetRecentGameStatusResponse struct {
	Status
	Data RecentGameStatus `json:"data"`
}
