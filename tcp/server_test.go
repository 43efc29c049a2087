package tcp

import (
	"bufio"
	"fmt"
	"math/rand"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListenAndServe_Echo(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Nil(t, err)

	closeChan := make(chan struct{})
	go ListenAndServe(listener, MakeEchoHandler(), closeChan)

	conn, err := net.Dial("tcp", listener.Addr().String())
	assert.Nil(t, err)
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for i := 0; i < 10; i++ {
		val := rand.Int()
		msg := fmt.Sprintf("%d\n", val)
		_, err = conn.Write([]byte(msg))
		assert.Nil(t, err)

		line, err := reader.ReadString('\n')
		assert.Nil(t, err)
		assert.Equal(t, msg, line)
	}

	close(closeChan)
	time.Sleep(10 * time.Millisecond)
}
