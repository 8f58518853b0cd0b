package asset

// DefaultScene is the six-letter logo table used when no scene file is given
const DefaultScene = `
# === Session ===
total_required: 6
effect: sf-rainbow

# === Static scenery ===
fixtures:
  - name: table
    position: {x: 0, y: 0.45, z: 0}
  - name: wall
    position: {x: 0, y: 1.5, z: 2}

pieces:

  # --- i ---
  - name: logo-i-middle[0]
    position: {x: -1.5, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top[0]", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-top[1]", offset: {x: 0.1, y: 0, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-i-top[0]
    position: {x: -1.38, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-i-top[1]
    position: {x: -1.62, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true
  - name: logo-i-bottom[0]
    position: {x: -1.5, y: 0.3, z: 0.8}
    grab: true
    locker: true
    helper: true

  # --- l ---
  - name: logo-l-middle[0]
    position: {x: -0.9, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-l-top[0]
    position: {x: -0.78, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-l-bottom[0]
    position: {x: -1.02, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true

  # --- n ---
  - name: logo-n-middle[0]
    position: {x: -0.3, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-n-top[0]
    position: {x: -0.18, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-n-bottom[0]
    position: {x: -0.42, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true

  # --- t ---
  - name: logo-t-middle[0]
    position: {x: 0.3, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top[0]", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-top[1]", offset: {x: 0.1, y: 0, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-t-top[0]
    position: {x: 0.42, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-t-top[1]
    position: {x: 0.18, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true
  - name: logo-t-bottom[0]
    position: {x: 0.3, y: 0.3, z: 0.8}
    grab: true
    locker: true
    helper: true

  # --- s ---
  - name: logo-s-middle[0]
    position: {x: 0.9, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top[0]", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-top[1]", offset: {x: 0.1, y: 0, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-s-top[0]
    position: {x: 1.02, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-s-top[1]
    position: {x: 0.78, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true
  - name: logo-s-bottom[0]
    position: {x: 0.9, y: 0.3, z: 0.8}
    grab: true
    locker: true
    helper: true

  # --- a ---
  - name: logo-a-middle[0]
    position: {x: 1.5, y: 0.5, z: 0}
    grab: true
    locker: true
    snap_points:
      - {name: "snap-top[0]", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-top[1]", offset: {x: 0.1, y: 0, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}}
  - name: logo-a-top[0]
    position: {x: 1.62, y: 0.3, z: 0.6}
    grab: true
    locker: true
    helper: true
  - name: logo-a-top[1]
    position: {x: 1.38, y: 0.3, z: 0.7}
    grab: true
    locker: true
    helper: true
  - name: logo-a-bottom[0]
    position: {x: 1.5, y: 0.3, z: 0.8}
    grab: true
    locker: true
    helper: true

# === End slots on the wall ===
slots:
  - name: end-logo-i-middle[0]
    parent: wall
    position: {x: -1, y: 0, z: -0.1}
  - name: end-logo-l-middle[0]
    parent: wall
    position: {x: -0.6, y: 0, z: -0.1}
  - name: end-logo-n-middle[0]
    parent: wall
    position: {x: -0.2, y: 0, z: -0.1}
  - name: end-logo-t-middle[0]
    parent: wall
    position: {x: 0.2, y: 0, z: -0.1}
  - name: end-logo-s-middle[0]
    parent: wall
    position: {x: 0.6, y: 0, z: -0.1}
  - name: end-logo-a-middle[0]
    parent: wall
    position: {x: 1, y: 0, z: -0.1}
`
