package domain

// Category is a user-owned bucket for classifying transactions
type Category struct {
	ID     int32  `json:"id"`
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
}

// DefaultCategoryNames are created for every user at registration
var DefaultCategoryNames = []string{"Food", "Transport", "Shopping", "Bills", "Salary", "Other"}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	CreateMany(userID int32, names []string) ([]*Category, error)
	GetByUser(userID int32) ([]*Category, error)
	GetByID(userID int32, id int32) (*Category, error)
}
