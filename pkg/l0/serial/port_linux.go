// Package serial opens Linux serial ports as byte-level transports
// for the protocol engine.
package serial

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Config holds the parameters for opening a serial port.
type Config struct {
	Device   string
	BaudRate int
}

// Port is an open serial port. It implements yx.Transport: writes are
// blocking, reads are non-blocking and paired with Available.
type Port struct {
	fd   int
	file *os.File
}

// Open opens and configures the port for raw 8N1 operation.
func Open(conf Config) (*Port, error) {
	fd, err := syscall.Open(conf.Device, syscall.O_RDWR|syscall.O_NOCTTY|syscall.O_NONBLOCK, 0666)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", conf.Device, err)
	}

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("get termios: %v", err)
	}

	// raw mode
	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8

	baud := baudToUnix(conf.BaudRate)
	termios.Cflag &^= unix.CBAUD
	termios.Cflag |= baud

	// polled operation: never block in read
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("set termios: %v", err)
	}

	return &Port{fd: fd, file: os.NewFile(uintptr(fd), conf.Device)}, nil
}

// Write implements Transport. Short writes are resumed so a frame is
// never truncated on the wire.
func (p *Port) Write(b []byte) (int, error) {
	written := 0
	for written < len(b) {
		n, err := syscall.Write(p.fd, b[written:])
		if n > 0 {
			written += n
		}
		if err == syscall.EAGAIN {
			continue
		}
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Available implements Transport using the driver's input queue count.
func (p *Port) Available() int {
	n, err := unix.IoctlGetInt(p.fd, unix.TIOCINQ)
	if err != nil {
		return 0
	}
	return n
}

// ReadByte implements Transport.
func (p *Port) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := syscall.Read(p.fd, buf[:])
		if err == syscall.EAGAIN {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, syscall.EIO
		}
		return buf[0], nil
	}
}

// Now implements Transport.
func (p *Port) Now() time.Time {
	return time.Now()
}

// Close closes the port.
func (p *Port) Close() error {
	return p.file.Close()
}

func baudToUnix(baud int) uint32 {
	switch baud {
	case 4800:
		return unix.B4800
	case 9600, 0:
		return unix.B9600
	case 19200:
		return unix.B19200
	case 38400:
		return unix.B38400
	case 57600:
		return unix.B57600
	case 115200:
		return unix.B115200
	default:
		// the YX5300 link runs at 9600
		return unix.B9600
	}
}
