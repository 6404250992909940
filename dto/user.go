// file: dto/user.go
package dto

type UpdateUserReq struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type QueryUsersReq struct {
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1"`
	Query string `form:"query"`
}
