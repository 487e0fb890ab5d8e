package sessions

import (
	"github.com/google/uuid"
)

// Session là giá trị xác định caller hiện tại đã authenticated hay chưa,
// và nếu có thì là user nào. Được truyền EXPLICIT vào service calls,
// không nằm ẩn trong global state.
//
// State machine:
//
//	Anonymous --authenticate ok--> Authenticated --logout--> Anonymous
//
// Failed authenticate không tạo transition - vẫn Anonymous.
type Session struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
}

// Anonymous trả về session chưa authenticated
func Anonymous() Session {
	return Session{}
}

// IsAuthenticated báo caller đã đăng nhập chưa
func (s Session) IsAuthenticated() bool {
	return s.Authenticated && s.UserID != uuid.Nil
}
