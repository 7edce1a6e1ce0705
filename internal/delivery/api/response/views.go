package response

import (
	"time"

	"usermgmt/internal/domain/entity"
	"usermgmt/internal/usecase"
)

// UserView is the public projection of a user. It never carries the password hash.
type UserView struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role.String(),
		Status:    user.Status.String(),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

func NewUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}

	return views
}

// TaskView is the JSON form of a task.
type TaskView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTaskView(task *entity.Task) *TaskView {
	return &TaskView{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		User:        task.OwnerUserID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func NewTaskViews(tasks []*entity.Task) []*TaskView {
	views := make([]*TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task))
	}

	return views
}

// NewPaginationView converts the use case pagination into its JSON form.
func NewPaginationView(p usecase.Pagination) *PaginationView {
	view := &PaginationView{}
	if p.Next != nil {
		view.Next = &PageRefView{Page: p.Next.Page, Limit: p.Next.Limit}
	}
	if p.Prev != nil {
		view.Prev = &PageRefView{Page: p.Prev.Page, Limit: p.Prev.Limit}
	}

	return view
}
