package config

import (
	"log"

	"github.com/MaTrix986/inspiration-collector/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// DB 业务主库
var DB *gorm.DB

func InitDB() {
	masterDSN := Get("MYSQL_DSN",
		"root:rootpassword@tcp(127.0.0.1:3306)/inspiration_db?charset=utf8mb4&parseTime=True&loc=Local")

	var err error
	DB, err = gorm.Open(mysql.Open(masterDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ 数据库连接失败: ", err)
	}

	// 配了从库就挂读写分离，没配就单库跑
	if replicaDSN := Get("MYSQL_REPLICA_DSN", ""); replicaDSN != "" {
		err = DB.Use(dbresolver.Register(dbresolver.Config{
			Sources:  []gorm.Dialector{mysql.Open(masterDSN)},
			Replicas: []gorm.Dialector{mysql.Open(replicaDSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			log.Println("⚠️ 读写分离配置失败 (可能是从库未启动): ", err)
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Inspiration{},
		&models.Tag{},
		&models.Category{},
	)
	if err != nil {
		log.Fatal("❌ 建表失败: ", err)
	}

	log.Println("✅ 数据库初始化成功")
}
