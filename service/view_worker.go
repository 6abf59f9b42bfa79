package service

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/MaTrix986/inspiration-collector/config"

	"github.com/streadway/amqp"
)

// ViewMessage 一次被计数的浏览
type ViewMessage struct {
	InspirationID int64  `json:"inspiration_id"`
	ViewerID      string `json:"viewer_id"`
}

const hotRankKey = "hot:inspirations"

// PublishViewEvent 把浏览事件丢进 MQ，异步维护热度榜。
// 持久的浏览数在 MySQL 里已经加过了，这条路纯属锦上添花，MQ 没起来就跳过
func PublishViewEvent(inspirationID int64, viewerID string) {
	if config.MQChannel == nil {
		return
	}
	msg := ViewMessage{InspirationID: inspirationID, ViewerID: NormalizeID(viewerID)}
	body, _ := json.Marshal(msg)
	err := config.MQChannel.Publish("", config.ViewQueue, false, false, amqp.Publishing{
		ContentType: "application/json", Body: body,
	})
	if err != nil {
		log.Println("⚠️ 浏览事件发送失败: ", err)
	}
}

// StartViewWorker 消费浏览事件，维护 Redis 的热度榜
func StartViewWorker() {
	msgs, err := config.MQChannel.Consume(config.ViewQueue, "", true, false, false, false, nil)
	if err != nil {
		log.Println("⚠️ 浏览队列消费失败: ", err)
		return
	}
	go func() {
		log.Println("🔥 热度 Worker 已启动...")
		for d := range msgs {
			var msg ViewMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				continue
			}
			member := strconv.FormatInt(msg.InspirationID, 10)
			config.RDB.ZIncrBy(config.Ctx, hotRankKey, 1, member)
			log.Printf("✅ 热度 +1: Inspiration %d", msg.InspirationID)
		}
	}()
}

// HotInspirationIDs 热度榜前 n 名的记录 id，按热度从高到低
func HotInspirationIDs(n int64) []int64 {
	if config.RDB == nil {
		return nil
	}
	members, err := config.RDB.ZRevRange(config.Ctx, hotRankKey, 0, n-1).Result()
	if err != nil {
		log.Println("⚠️ 热度榜读取失败: ", err)
		return nil
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if id, err := strconv.ParseInt(m, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
