package dto

// ListQuery representa os parâmetros de paginação das listagens
type ListQuery struct {
	Skip  int `form:"skip,default=0" binding:"omitempty,min=0"`
	Limit int `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
}
