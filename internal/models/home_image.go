package models

// HomeImage — таблица home_images (баннеры главной страницы)
type HomeImage struct {
	Base
	Title       string
	Description string `gorm:"type:text"`
	Image       string `gorm:"not null"`
	Position    string // метка размещения, главная сортирует по ней по возрастанию
	IsActive    bool   `gorm:"not null"` // без default-тега, иначе false теряется при вставке
}
