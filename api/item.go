package api

import (
	"github.com/samko5sam/webapps/handler"

	"github.com/gin-gonic/gin"
)

type itemParam struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

func APIGetItems(c *gin.Context) (int, error) {
	items, err := handler.ListItems()
	if err != nil {
		return 500, err
	}
	c.JSON(200, items)
	return 0, nil
}

func APIAddItem(c *gin.Context) (int, error) {
	var param itemParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Name is required"})
		return 0, nil
	}
	item, err := handler.CreateItem(param.Name, param.Description)
	if err != nil {
		return 500, err
	}
	c.JSON(201, gin.H{"msg": "Item added successfully", "id": item.ID})
	return 0, nil
}

func APIUpdateItem(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Item not found"})
		return 0, nil
	}
	var param itemParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Name is required"})
		return 0, nil
	}
	err := handler.UpdateItem(id, param.Name, param.Description)
	if err == handler.ErrItemNotExist {
		c.JSON(404, gin.H{"msg": "Item not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{"msg": "Item updated successfully"})
	return 0, nil
}

func APIDeleteItem(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Item not found"})
		return 0, nil
	}
	err := handler.DeleteItem(id)
	if err == handler.ErrItemNotExist {
		c.JSON(404, gin.H{"msg": "Item not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{"msg": "Item deleted successfully"})
	return 0, nil
}

// ItemAPI is the route table of the item manager.
func ItemAPI() []*APIItem {
	return []*APIItem{
		{Path: "/items", Method: APIGet, Role: RoleGuest, Func: APIGetItems},
		{Path: "/items", Method: APIPost, Role: RoleGuest, Func: APIAddItem},
		{Path: "/items/:id", Method: APIPut, Role: RoleGuest, Func: APIUpdateItem},
		{Path: "/items/:id", Method: APIDelete, Role: RoleGuest, Func: APIDeleteItem},
	}
}
