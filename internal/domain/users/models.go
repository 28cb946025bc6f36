package users

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	ManagerID *int64 `json:"managerId,omitempty"`
}
