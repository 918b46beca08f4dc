package models

// Role values recognized by the authorization layer.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User is the directory view of an account. Identity, credentials and profile
// management live outside this service; the scheduling core only needs the id,
// the role and the push token.
type User struct {
	ID       string `bson:"id" json:"id"`
	Role     string `bson:"role" json:"role"`
	Name     string `bson:"name" json:"name"`
	FCMToken string `bson:"fcmToken,omitempty" json:"-"`
}
