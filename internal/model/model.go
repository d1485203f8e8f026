package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type AddMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

type PayRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Month    int    `json:"month" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Method   string `json:"method" binding:"required"`
}

// UnpayRequest reverses a dues payment. CachedMethod and CachedAmount
// are what the client last saw for the row; they are used only when the
// stored row is already gone.
type UnpayRequest struct {
	MemberID     string `json:"member_id" binding:"required"`
	Month        int    `json:"month" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	CachedMethod string `json:"cached_method"`
	CachedAmount int64  `json:"cached_amount"`
}

type SetBalanceRequest struct {
	Value int64 `json:"value"`
}

type AddTransactionRequest struct {
	Date        string `json:"date"`
	Type        string `json:"type" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
	Method      string `json:"method" binding:"required"`
}

type AddMeetingRequest struct {
	Date               string `json:"date" binding:"required"`
	Topic              string `json:"topic" binding:"required"`
	Location           string `json:"location"`
	TotalCashCollected int64  `json:"total_cash_collected"`
	Notes              string `json:"notes"`
}

type SpinRequest struct {
	PreviousRotation float64 `json:"previous_rotation"`
}

type SpinResponse struct {
	Spins         int     `json:"spins"`
	ExtraAngle    int     `json:"extra_angle"`
	TotalRotation float64 `json:"total_rotation"`
	WinnerIndex   int     `json:"winner_index"`
	Winner        Member  `json:"winner"`
}

type CommitSpinRequest struct {
	WinnerID string `json:"winner_id" binding:"required"`
}
