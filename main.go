package main

import (
	"log"

	"github.com/MaTrix986/inspiration-collector/config"
	"github.com/MaTrix986/inspiration-collector/handlers"
	"github.com/MaTrix986/inspiration-collector/routes"
	"github.com/MaTrix986/inspiration-collector/service"
)

func main() {
	// 1. 初始化所有基础设施
	config.LoadEnv()
	config.InitDB()
	config.InitRedis()
	config.InitMinIO()
	config.InitRabbitMQ()

	// 2. 老数据的 owner_id 写法不统一，启动时先归一化一遍
	if err := service.MigrateOwnerIDs(config.DB); err != nil {
		log.Fatal("❌ owner_id 归一化失败: ", err)
	}

	// 3. 启动热度 Worker
	service.StartViewWorker()

	// 4. 启动 Web 服务
	handlers.Setup(config.DB)
	r := routes.InitRouter()
	addr := config.Get("LISTEN_ADDR", ":8080")
	log.Println("🚀 服务启动成功: http://localhost" + addr)
	r.Run(addr)
}
