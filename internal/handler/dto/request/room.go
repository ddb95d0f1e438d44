package request

type ListRoomsRequest struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Search string `form:"q"`
	Status string `form:"status" binding:"omitempty,oneof=available reserved maintenance"`
}
