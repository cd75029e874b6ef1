package models

// FollowEdge is a directed relationship: the follower's feed includes the
// followee's posts. No self edges; uniqueness is enforced at the service
// layer so a soft-deleted edge can be re-created later.
type FollowEdge struct {
	BaseModel

	FollowerID uint `json:"follower_id" gorm:"index:idx_follow_edges_pair"`
	FolloweeID uint `json:"followee_id" gorm:"index:idx_follow_edges_pair"`

	Follower Account `json:"follower"`
	Followee Account `json:"followee"`
}
