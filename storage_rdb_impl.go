package questions

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl は documents テーブルをコーパスとして扱う
//
//	create table documents (
//	  id   bigint unsigned auto_increment primary key,
//	  name varchar(255) not null unique,
//	  body mediumtext not null
//	);
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from documents`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllDocuments() ([]Document, error) {
	docs := make([]Document, 0)
	if err := s.DB.Select(&docs, `select id, name, body from documents order by name`); err != nil {
		return nil, err
	}
	return docs, nil
}

// AddDocument は名前が重複する場合は本文を上書きする
func (s *StorageRdbImpl) AddDocument(doc Document) (DocumentID, error) {
	res, err := s.DB.NamedExec(
		`insert into documents (name, body) values (:name, :body)
		on duplicate key update id = last_insert_id(id), body = :body`,
		map[string]interface{}{
			"name": doc.Name,
			"body": doc.Body,
		})
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DocumentID(insertedID), nil
}
