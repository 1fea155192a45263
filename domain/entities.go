package domain

import "time"

// User lifecycle statuses.
const (
	StatusInProgress = "In Progress"
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
)

// Cattle listing types.
const (
	CattleTypeCow         = "Cow"
	CattleTypeBuffalo     = "Buffalo"
	CattleTypeCowCalf     = "Cow-Calf"
	CattleTypeBuffaloCalf = "Buffalo-Calf"
)

// Coin ledger entry types.
const (
	TxnDebited  = "debited"
	TxnCredited = "credited"
)

// User represents a farmer account, keyed by mobile number
type User struct {
	ID               uint       `json:"userId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	MobileNumber     string     `json:"mobileNumber"`
	FarmName         string     `json:"farmName"`
	State            string     `json:"state"`
	District         string     `json:"district"`
	Taluka           string     `json:"taluka"`
	Village          string     `json:"village"`
	PinCode          int        `json:"pinCode"`
	CowCount         int        `json:"cowCount"`
	BuffaloCount     int        `json:"buffaloCount"`
	CowCalfCount     int        `json:"cowCalfCount"`
	BuffaloCalfCount int        `json:"buffaloCalfCount"`
	Status           string     `json:"status"`
	CreatedOn        time.Time  `json:"createdOn"`
	LastLogIn        *time.Time `json:"lastLogIn,omitempty"`
}

// ProfileUpdate carries the mutable profile fields for register/update.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	FarmName         *string `json:"farmName"`
	State            *string `json:"state"`
	District         *string `json:"district"`
	Taluka           *string `json:"taluka"`
	Village          *string `json:"village"`
	PinCode          *int    `json:"pinCode"`
	CowCount         *int    `json:"cowCount"`
	BuffaloCount     *int    `json:"buffaloCount"`
	CowCalfCount     *int    `json:"cowCalfCount"`
	BuffaloCalfCount *int    `json:"buffaloCalfCount"`
}

// OTPChallenge is the transient per-mobile verification state held in Redis
type OTPChallenge struct {
	MobileNumber string    `json:"mobile_number"`
	OrderID      string    `json:"order_id"`
	IssuedAt     time.Time `json:"issued_at"`
}

// AuthResult is the outcome of a successful OTP verification
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents session token claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// CoinWallet holds a user's spendable coin balance
type CoinWallet struct {
	UserID    uint  `json:"userId"`
	TotalCoin int64 `json:"totalCoin"`
}

// Transaction is one append-only coin ledger entry
type Transaction struct {
	ID          uint      `json:"transactionId"`
	UserID      uint      `json:"userId"`
	Description string    `json:"transactionDescription"`
	Amount      int64     `json:"transactionAmount"`
	Type        string    `json:"transactionType"`
	CreatedAt   time.Time `json:"transactionDate"`
}

// ListingImage is one stored image reference on a listing
type ListingImage struct {
	FilePath   string    `json:"filePath"`
	UploadDate time.Time `json:"uploadDate"`
}

// CattleListing is a cattle-for-sale record
type CattleListing struct {
	ID                         uint           `json:"cattleId"`
	UserID                     uint           `json:"userId"`
	Type                       string         `json:"type"`
	CattleBreed                string         `json:"cattleBreed"`
	Images                     []ListingImage `json:"images"`
	DateOfDelivery             string         `json:"dateOfDelivery,omitempty"`
	DateOfBirth                string         `json:"dateOfBirth,omitempty"`
	NumberOfLactation          int            `json:"numberOfLactation"`
	DailyMilkProduction        float64        `json:"dailyMilkProduction"`
	EstimatedDailyMilkCapacity float64        `json:"estimatedDailyMilkCapacity"`
	IsPregnant                 string         `json:"isPregnant"`
	UsedSemen                  string         `json:"usedSemen,omitempty"`
	IsDeworming                string         `json:"isDeworming"`
	IsVaccination              string         `json:"isVaccination"`
	IsHorn                     string         `json:"isHorn"`
	Weight                     float64        `json:"weight"`
	Price                      float64        `json:"price"`
	NoOfCalving                string         `json:"noOfCalving"`
	TagNumber                  string         `json:"tagNumber,omitempty"`
	DateOfInsemination         string         `json:"dateOfInsemination,omitempty"`
	CreatedAt                  time.Time      `json:"createdAt"`
}

// ListingPage is one page of the public listing feed
type ListingPage struct {
	Listings    []CattleListing
	CurrentPage int
	TotalRecord int64
	TotalPages  int
}

// SavedListing is a user's bookmark of a listing
type SavedListing struct {
	ID        uint      `json:"saveCattleSellId"`
	UserID    uint      `json:"userId"`
	ListingID uint      `json:"cattleSellId"`
	SavedOn   time.Time `json:"saveOn"`
}

// BreedingRecord is one pregEasy pregnancy-tracking entry
type BreedingRecord struct {
	ID                         uint       `json:"pregEasyId"`
	UserID                     uint       `json:"userId"`
	Type                       string     `json:"type"`
	Breed                      string     `json:"breed"`
	TagNumber                  string     `json:"tagNumber"`
	DateOfLastDelivery         time.Time  `json:"dateOfLastDelivery"`
	DateOfFirstHeat            time.Time  `json:"dateOfFirstHeat"`
	DateOfInsemination         time.Time  `json:"dateOfInsemination"`
	DateOfBirth                *time.Time `json:"dateOfBirth,omitempty"`
	NumberOfLactation          int        `json:"numberOfLactation"`
	DailyMilkProduction        float64    `json:"dailyMilkProduction"`
	EstimatedDailyMilkCapacity float64    `json:"estimatedDailyMilkCapacity"`
	IsPregnant                 bool       `json:"isPregnant"`
	UsedSemen                  string     `json:"usedSemen"`
	IsDeworming                bool       `json:"isDeworming"`
	IsVaccination              bool       `json:"isVaccination"`
}
