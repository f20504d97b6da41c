package handler

import (
	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/ztrue/tracerr"
	"gorm.io/gorm"
)

var ErrItemNotExist = tracerr.New("item does not exist")

// ListItems returns all items, newest first.
func ListItems() ([]*models.Item, error) {
	ret := []*models.Item{}
	if err := db.GetDB().Order("created_at DESC").Find(&ret).Error; err != nil {
		return nil, tracerr.Wrap(err)
	}
	return ret, nil
}

func CreateItem(name string, description string) (*models.Item, error) {
	item := &models.Item{
		Name:        name,
		Description: description,
	}
	if err := db.GetDB().Create(item).Error; err != nil {
		return nil, tracerr.Wrap(err)
	}
	return item, nil
}

func UpdateItem(id uint, name string, description string) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		var item models.Item
		err := tx.First(&item, id).Error
		if err == gorm.ErrRecordNotFound {
			return ErrItemNotExist
		} else if err != nil {
			return tracerr.Wrap(err)
		}
		item.Name = name
		item.Description = description
		return tracerr.Wrap(tx.Save(&item).Error)
	})
}

func DeleteItem(id uint) error {
	ret := db.GetDB().Delete(&models.Item{}, id)
	if ret.Error != nil {
		return tracerr.Wrap(ret.Error)
	}
	if ret.RowsAffected == 0 {
		return ErrItemNotExist
	}
	return nil
}
