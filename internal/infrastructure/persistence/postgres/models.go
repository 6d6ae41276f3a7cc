package postgres

// Models GORM do catálogo. Índices únicos em nomes/emails e o índice
// composto da estante servem de contenção no armazenamento para as
// verificações do Integrity Guard sob concorrência.

// RoleModel é o model GORM para papéis
type RoleModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(300);not null"`
	RoleID       string `gorm:"type:uuid;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// AuthorModel é o model GORM para autores
type AuthorModel struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Name      string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Biography *string `gorm:"type:text"`
	BirthDate *int64
	Country   *string `gorm:"type:varchar(100)"`
	CreatedAt int64   `gorm:"autoCreateTime"`
	UpdatedAt int64   `gorm:"autoUpdateTime"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel é o model GORM para gêneros
type GenreModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description *string `gorm:"type:varchar(200)"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// BookModel é o model GORM para livros
// Author e Genre são pré-carregados para montagem de respostas
type BookModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Title       string  `gorm:"type:varchar(100);not null;index"`
	Description *string `gorm:"type:varchar(500)"`
	Year        int     `gorm:"not null"`
	AuthorID    string  `gorm:"type:uuid;not null;index"`
	GenreID     string  `gorm:"type:uuid;not null;index"`
	Author      *AuthorModel `gorm:"foreignKey:AuthorID"`
	Genre       *GenreModel  `gorm:"foreignKey:GenreID"`
	CreatedAt   int64        `gorm:"autoCreateTime"`
	UpdatedAt   int64        `gorm:"autoUpdateTime"`
}

func (BookModel) TableName() string {
	return "books"
}

// CommentModel é o model GORM para comentários de livros
type CommentModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	BookID    string `gorm:"type:uuid;not null;index"`
	UserID    string `gorm:"type:uuid;not null;index"`
	Text      string `gorm:"column:comment_text;type:varchar(200);not null"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
}

func (CommentModel) TableName() string {
	return "book_comments"
}

// ShelfModel é o model GORM para entradas da estante
// O índice único composto garante no armazenamento que o par
// (user_id, book_id) aparece no máximo uma vez
type ShelfModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	BookID     string `gorm:"type:uuid;not null;uniqueIndex:idx_shelf_user_book"`
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:idx_shelf_user_book"`
	StatusRead bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
}

func (ShelfModel) TableName() string {
	return "shelf"
}
