package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// 优惠券并发核销压测：创建一张限量券，然后并发下单抢用，
// 验证成功数不超过 usageLimit (条件自增兜底)
const (
	totalClients = 2000 // 并发下单数
	usageLimit   = 5    // 优惠券限量
)

var (
	baseURL    = envOr("BASE_URL", "http://localhost:8080")
	adminToken = os.Getenv("ADMIN_TOKEN")
	userToken  = os.Getenv("USER_TOKEN")
	productID  = os.Getenv("PRODUCT_ID")
	price      = envOr("PRODUCT_PRICE", "29.99")

	httpClient *http.Client
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

func main() {
	if adminToken == "" || userToken == "" || productID == "" {
		fmt.Println("ADMIN_TOKEN, USER_TOKEN and PRODUCT_ID are required")
		os.Exit(1)
	}

	code := fmt.Sprintf("STRESS%d", time.Now().Unix())
	if err := createCoupon(code); err != nil {
		fmt.Printf("创建优惠券失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("开始压测：%d 个并发订单抢 %d 次核销机会 (code: %s)...\n", totalClients, usageLimit, code)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	failCount := 0

	start := time.Now()
	for i := 0; i < totalClients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok := placeOrder(code)
			mu.Lock()
			if ok {
				successCount++
			} else {
				failCount++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	duration := time.Since(start)
	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("总请求数: %d, QPS: %.2f\n", totalClients, float64(totalClients)/duration.Seconds())
	fmt.Printf("成功核销: %d (预期上限: %d)\n", successCount, usageLimit)
	fmt.Printf("失败: %d\n", failCount)
	if successCount > usageLimit {
		fmt.Println("!!! 超卖：成功数超过 usageLimit")
		os.Exit(1)
	}
	fmt.Println("--------------------------------------------------")
}

func createCoupon(code string) error {
	payload := map[string]interface{}{
		"code":       code,
		"type":       "fixed_amount",
		"value":      "1.00",
		"usageLimit": usageLimit,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/admin/coupons/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func placeOrder(code string) bool {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": productID, "quantity": 1, "price": price},
		},
		"couponCode": code,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/orders/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return false
	}
	return result.Code == 0
}
