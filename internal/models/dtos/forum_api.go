package dtos

// ForumUserRef is one username entry inside a forum group payload.
type ForumUserRef struct {
	Username string `json:"username"`
}

// ForumGroupResponse is the payload of GET /group/{id}?key=K
type ForumGroupResponse struct {
	Group struct {
		Members []ForumUserRef `json:"members"`
		Leaders []ForumUserRef `json:"leaders"`
	} `json:"group"`
}

// ForumUserResponse is the payload of GET /user/{id}?key=K and
// GET /user/username/{name}?key=K
type ForumUserResponse struct {
	User struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}
