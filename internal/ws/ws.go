package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pump_launch/internal/common"
	"pump_launch/internal/model"
)

var ErrNotConnected = errors.New("WebSocket连接未建立")

// Watcher 订阅 pumpportal 新代币推送，等待指定 mint 的创建事件
type Watcher struct {
	url    string
	dialer *websocket.Dialer

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWatcher(url string) *Watcher {
	if url == "" {
		url = common.DATA_FEED_URL
	}
	return &Watcher{
		url:    url,
		dialer: websocket.DefaultDialer,
	}
}

// Connect 建立连接并订阅新代币事件
func (w *Watcher) Connect(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		return nil
	}

	conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return errors.Wrap(err, "连接WebSocket服务失败")
	}

	if err := send(conn, "subscribeNewToken"); err != nil {
		conn.Close()
		return err
	}

	w.conn = conn
	common.Log.WithField("url", w.url).Info("成功连接到数据推送并订阅新代币事件")
	return nil
}

func send(conn *websocket.Conn, method string) error {
	data, err := json.Marshal(map[string]interface{}{
		"method": method,
	})
	if err != nil {
		return errors.Wrap(err, "序列化订阅请求失败")
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.Wrap(err, "发送订阅请求失败")
	}
	return nil
}

// WaitForCreate 读取推送直到出现 mint 的创建事件，超时或 ctx 结束时返回错误
func (w *Watcher) WaitForCreate(ctx context.Context, mint string, timeout time.Duration) (*model.TokenEvent, error) {
	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return nil, ErrNotConnected
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, errors.Wrap(err, "设置读取超时失败")
	}

	// ctx 取消时解除阻塞的读取
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errors.Wrap(err, "读取推送失败")
		}

		var event model.TokenEvent
		if err := json.Unmarshal(message, &event); err != nil {
			common.Log.WithError(err).Debug("忽略无法解析的消息")
			continue
		}
		if event.Mint == "" {
			// 订阅确认等非事件消息
			continue
		}
		if event.IsCreateOf(mint) {
			return &event, nil
		}
		common.Log.WithFields(logrus.Fields{
			"mint":   event.Mint,
			"txType": event.TxType,
		}).Debug("跳过其他代币事件")
	}
}

// Close 关闭连接
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}
