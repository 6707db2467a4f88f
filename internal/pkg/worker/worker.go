package worker

import (
	"log"
	"time"

	"shop_backoffice/internal/domain/order/model"
)

// EventStore 事件落库接口，由订单仓库实现
type EventStore interface {
	CreateEvent(event *model.OrderEvent) error
}

// OrderEventTask 订单事件任务
type OrderEventTask struct {
	OrderID    string
	FromStatus string
	ToStatus   string
	Note       string
	Retry      int // 重试次数
}

// WorkerPool 订单事件异步落库
// 事件流水不在订单事务的关键路径上，失败重试即可
type WorkerPool struct {
	TaskQueue  chan OrderEventTask
	RetryQueue chan OrderEventTask // 重试队列
	Store      EventStore
	WorkerNum  int
	MaxRetry   int // 最大重试次数
}

func NewWorkerPool(store EventStore, workerNum int, bufferSize int) *WorkerPool {
	return &WorkerPool{
		TaskQueue:  make(chan OrderEventTask, bufferSize),
		RetryQueue: make(chan OrderEventTask, bufferSize/2),
		Store:      store,
		WorkerNum:  workerNum,
		MaxRetry:   3, // 最多重试3次
	}
}

func (p *WorkerPool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		go p.worker(i)
	}
	// 启动重试处理协程
	go p.retryWorker()
	log.Printf("Order event worker pool started with %d workers", p.WorkerNum)
}

// AddTask 投递任务，队列满时丢弃并记录
func (p *WorkerPool) AddTask(task OrderEventTask) {
	select {
	case p.TaskQueue <- task:
	default:
		log.Printf("[WorkerPool] Task queue full, event dropped: %+v", task)
	}
}

func (p *WorkerPool) worker(id int) {
	for task := range p.TaskQueue {
		if err := p.processTask(task); err != nil {
			log.Printf("[Worker %d] Failed to persist order event (OrderID: %s, %s -> %s): %v",
				id, task.OrderID, task.FromStatus, task.ToStatus, err)

			// 如果未达到最大重试次数，加入重试队列
			if task.Retry < p.MaxRetry {
				task.Retry++
				select {
				case p.RetryQueue <- task:
				default:
					log.Printf("[Worker %d] Retry queue full, event dropped: %+v", id, task)
				}
			} else {
				log.Printf("[Worker %d] Event exceeded max retries, dropped: %+v", id, task)
			}
		}
	}
}

func (p *WorkerPool) retryWorker() {
	for task := range p.RetryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(task.Retry) * time.Second)

		select {
		case p.TaskQueue <- task:
		default:
			log.Printf("[RetryWorker] Task queue full, event dropped: %+v", task)
		}
	}
}

func (p *WorkerPool) processTask(task OrderEventTask) error {
	return p.Store.CreateEvent(&model.OrderEvent{
		OrderID:    task.OrderID,
		FromStatus: task.FromStatus,
		ToStatus:   task.ToStatus,
		Note:       task.Note,
	})
}
